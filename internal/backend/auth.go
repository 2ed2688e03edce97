package backend

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInData struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// SignIn аутентифицирует пользователя в бэкенде и возвращает его
// вместе с bearer-токеном. Сами учётки гейтвей не хранит - это мост
// к auth-роутам бэкенда.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	var data signInData
	if err := c.post(ctx, "/api/auth/sign-in/email", signInRequest{Email: email, Password: password}, &data); err != nil {
		return nil, "", fmt.Errorf("sign in: %w", err)
	}
	return &data.User, data.Token, nil
}
