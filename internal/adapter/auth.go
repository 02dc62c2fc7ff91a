package adapter

import (
	"context"
	"fmt"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = decodeJSON(resp, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

func (a *API) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var out models.AuthResponse
	if err = decodeJSON(resp, &out); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

func (a *API) Me(ctx context.Context) (models.User, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var out models.User
	if err = decodeJSON(resp, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}
