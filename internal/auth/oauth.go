package auth

import (
	"net/url"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/pkg/errors"
)

// ConfigureOAuth registers the federated sign-in providers with goth.
// The callback base is joined with the per-provider path the routes
// expose, so the post-login redirect stays configurable.
func ConfigureOAuth(store sessions.Store, baseURL, googleClientID, googleClientSecret string) error {
	gothic.Store = store

	providers := make([]goth.Provider, 0, 1)

	if googleClientID != "" {
		callback, err := providerCallbackURL(baseURL, "google")
		if err != nil {
			return errors.WithStack(err)
		}
		providers = append(providers, google.New(googleClientID, googleClientSecret, callback, "email", "profile"))
	}

	goth.UseProviders(providers...)
	return nil
}

func providerCallbackURL(baseURL, provider string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse base url %q", baseURL)
	}

	return u.JoinPath("/auth", provider, "callback").String(), nil
}
