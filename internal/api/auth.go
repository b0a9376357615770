// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"

	"learndash/admincli/internal/apierrors"
)

// Login submits first-factor credentials. On success the backend issues a
// short-lived session token for completing code verification; no bearer
// credentials exist yet at this point.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := c.doJSON(ctx, http.MethodPost, epLogin, false, body)
	if err != nil {
		return LoginResult{}, err
	}
	res, err := decodePayload[LoginResult](data, "login")
	if err != nil {
		return LoginResult{}, err
	}
	if res.SessionToken == "" {
		return LoginResult{}, apierrors.NewTransport("login response missing session token", nil)
	}
	return res, nil
}

// VerifyOTP completes second-factor verification and yields the bearer
// credential pair along with the authenticated user.
func (c *Client) VerifyOTP(ctx context.Context, sessionToken, code string) (VerifyResult, error) {
	body := map[string]string{"sessionToken": sessionToken, "code": code}
	data, err := c.doJSON(ctx, http.MethodPost, epVerifyLogin, false, body)
	if err != nil {
		return VerifyResult{}, err
	}
	res, err := decodePayload[VerifyResult](data, "verify-login")
	if err != nil {
		return VerifyResult{}, err
	}
	if res.AccessToken == "" {
		return VerifyResult{}, apierrors.NewTransport("verify response missing access token", nil)
	}
	return res, nil
}

// Register creates a new account. The account typically starts in a pending
// state until an administrator activates it.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (RegisterResult, error) {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}
	data, err := c.doJSON(ctx, http.MethodPost, epRegister, false, body)
	if err != nil {
		return RegisterResult{}, err
	}
	return decodePayload[RegisterResult](data, "register")
}

// ForgotPassword requests a password reset email. This endpoint returns
// structured error bodies even on non-2xx responses, which interpret
// surfaces as business failures rather than transport errors.
func (c *Client) ForgotPassword(ctx context.Context, email string) (ForgotPasswordResult, error) {
	data, err := c.doJSON(ctx, http.MethodPost, epForgotPassword, false, map[string]string{"email": email})
	if err != nil {
		return ForgotPasswordResult{}, err
	}
	return decodePayload[ForgotPasswordResult](data, "forgot-password")
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	_, err := c.doJSON(ctx, http.MethodPost, epResetPassword, false, body)
	return err
}

// RefreshToken exchanges the refresh token for a new access token. The
// refresh token itself is retained by the caller; this backend does not
// rotate it.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (RefreshResult, error) {
	data, err := c.doJSON(ctx, http.MethodPost, epRefresh, false, map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return RefreshResult{}, err
	}
	res, err := decodePayload[RefreshResult](data, "refresh")
	if err != nil {
		return RefreshResult{}, err
	}
	if res.AccessToken == "" {
		return RefreshResult{}, apierrors.NewTransport("refresh response missing access token", nil)
	}
	return res, nil
}
