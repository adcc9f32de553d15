package auth

// OAuthIdentity represents user information obtained from the OAuth provider.
type OAuthIdentity struct {
	// ProviderID is the provider's stable subject for the account
	// (GitHub's numeric user ID rendered as a string).
	ProviderID string
	Name       *string
	Email      *string
	AvatarURL  *string
}
