package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Woorigil/config"
	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/jwt"
	"Woorigil/pkg/response"
	"Woorigil/types"

	"google.golang.org/api/idtoken"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	KakaoLogin(ctx context.Context, code string) (*types.LoginResp, error)
	GoogleLogin(ctx context.Context, idToken string) (*types.LoginResp, error)
}

type AuthService struct {
	Config  *config.Config
	UserDao *dao.Users
}

// KakaoLogin exchanges the callback code for an access token, reads the
// profile and resolves (or creates) the matching user.
func (s *AuthService) KakaoLogin(ctx context.Context, code string) (*types.LoginResp, error) {
	token, err := s.kakaoToken(ctx, code)
	if err != nil {
		return nil, err
	}
	profile, err := s.kakaoProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.UserDao.GetOrCreateByProviderUID(ctx,
		"kakao",
		strconv.FormatInt(profile.ID, 10),
		profile.KakaoAccount.Email,
		profile.KakaoAccount.Profile.Nickname,
		profile.KakaoAccount.Profile.ProfileImageURL,
	)
	if err != nil {
		return nil, err
	}
	return s.issueSession(user)
}

// GoogleLogin verifies the client-supplied ID token against the configured
// OAuth client id; no token exchange is needed.
func (s *AuthService) GoogleLogin(ctx context.Context, rawToken string) (*types.LoginResp, error) {
	payload, err := idtoken.Validate(ctx, rawToken, s.Config.Google.ClientID)
	if err != nil {
		return nil, response.Unauthorized()
	}

	user, err := s.UserDao.GetOrCreateByProviderUID(ctx,
		"google",
		payload.Subject,
		claimString(payload.Claims, "email"),
		claimString(payload.Claims, "name"),
		claimString(payload.Claims, "picture"),
	)
	if err != nil {
		return nil, err
	}
	return s.issueSession(user)
}

func (s *AuthService) kakaoToken(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"client_id":    {s.Config.Kakao.ClientID},
		"redirect_uri": {s.Config.Kakao.RedirectURI},
		"code":         {code},
	}
	if s.Config.Kakao.ClientSecret != "" {
		form.Set("client_secret", s.Config.Kakao.ClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.Config.Kakao.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tokenResp types.KakaoTokenResp
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	if tokenResp.Error != "" {
		return "", fmt.Errorf("kakao token exchange failed: %s", tokenResp.ErrorDescription)
	}
	return tokenResp.AccessToken, nil
}

func (s *AuthService) kakaoProfile(ctx context.Context, accessToken string) (*types.KakaoProfileResp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Config.Kakao.ProfileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao profile request returned %d", resp.StatusCode)
	}
	var profile types.KakaoProfileResp
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *AuthService) issueSession(user *models.User) (*types.LoginResp, error) {
	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		"access",
		time.Duration(s.Config.Jwt.ExpireHours)*time.Hour,
	)
	if err != nil {
		return nil, err
	}
	return &types.LoginResp{Token: token, User: userResp(*user)}, nil
}

func claimString(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func userResp(u models.User) types.UserResp {
	return types.UserResp{
		ID:           u.ID,
		Provider:     u.Provider,
		Email:        u.Email,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
	}
}
