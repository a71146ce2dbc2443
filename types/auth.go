package types

// KakaoTokenResp is the token half of Kakao's code exchange.
type KakaoTokenResp struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int    `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// KakaoProfileResp is the subset of /v2/user/me the service reads.
type KakaoProfileResp struct {
	ID           int64  `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

type GoogleLoginReq struct {
	IDToken string `json:"idToken" binding:"required"`
}

type UserResp struct {
	ID           int64  `json:"id"`
	Provider     string `json:"provider"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

type LoginResp struct {
	Token string   `json:"token"`
	User  UserResp `json:"user"`
}
