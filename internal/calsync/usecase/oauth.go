package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"

	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/pkg/gcalendar"
)

// AuthURL builds the Google consent URL. The roster user id rides along
// as the OAuth state parameter so the callback can key the token file.
func (uc *implUseCase) AuthURL(ctx context.Context, userID int) (calsync.AuthURLOutput, error) {
	state := strconv.Itoa(userID)
	authURL := uc.cfg.OAuth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return calsync.AuthURLOutput{URL: authURL}, nil
}

// HandleCallback exchanges the authorization code for tokens and
// persists the per-user bundle keyed by the state parameter.
func (uc *implUseCase) HandleCallback(ctx context.Context, input calsync.CallbackInput) (calsync.CallbackOutput, error) {
	userID, err := strconv.Atoi(input.State)
	if err != nil || userID <= 0 {
		return calsync.CallbackOutput{}, calsync.ErrBadState
	}

	token, err := uc.cfg.OAuth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "HandleCallback: exchange failed for user %d: %v", userID, err)
		return calsync.CallbackOutput{}, fmt.Errorf("%w: %v", calsync.ErrExchangeFailed, err)
	}

	bundle := gcalendar.TokenBundle{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenURI:     uc.cfg.OAuth.Endpoint.TokenURL,
		ClientID:     uc.cfg.OAuth.ClientID,
		ClientSecret: uc.cfg.OAuth.ClientSecret,
	}
	if err := uc.tokenRepo.SaveToken(ctx, userID, bundle); err != nil {
		return calsync.CallbackOutput{}, fmt.Errorf("failed to persist token bundle: %w", err)
	}

	uc.l.Infof(ctx, "HandleCallback: stored OAuth bundle for user %d", userID)

	// The dashboard reads the access token from the redirect query
	// string.
	redirect := fmt.Sprintf("%s?access_token=%s&user_id=%d",
		uc.cfg.DashboardURL, url.QueryEscape(token.AccessToken), userID)

	return calsync.CallbackOutput{RedirectURL: redirect}, nil
}
