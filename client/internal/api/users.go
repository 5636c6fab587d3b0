package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
	"github.com/animalspotter/animalspotter/client/internal/types"
)

// marshal is swapped in tests to reach the EncodeFailed path, which a
// Credentials value cannot trigger on its own.
var marshal = json.Marshal

// Register creates an account. Any 200 is success; the body is ignored.
func Register(ctx context.Context, rc *resty.Client, creds types.Credentials) error {
	if err := checkCtx(ctx, OpRegister); err != nil {
		return err
	}
	resp, err := postCredentials(ctx, rc, OpRegister, PathSignup, creds)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return sdkerrors.NewHTTPError(OpRegister, resp.StatusCode(), resp.Body(), false)
	}
	return nil
}

// Authenticate exchanges credentials for a bearer token.
func Authenticate(ctx context.Context, rc *resty.Client, creds types.Credentials) (*types.AuthToken, error) {
	if err := checkCtx(ctx, OpAuthenticate); err != nil {
		return nil, err
	}
	resp, err := postCredentials(ctx, rc, OpAuthenticate, PathLogin, creds)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, sdkerrors.NewHTTPError(OpAuthenticate, resp.StatusCode(), resp.Body(), false)
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, sdkerrors.NewNoData(OpAuthenticate, resp.StatusCode())
	}
	var tok types.AuthToken
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, sdkerrors.NewDecodeError(OpAuthenticate, body, err)
	}
	if tok.IsZero() {
		return nil, sdkerrors.NewDecodeError(OpAuthenticate, body, errMissingToken)
	}
	return &tok, nil
}

func postCredentials(ctx context.Context, rc *resty.Client, op, path string, creds types.Credentials) (*resty.Response, error) {
	body, err := marshal(creds)
	if err != nil {
		return nil, sdkerrors.NewEncodeError(op, err)
	}
	resp, err := rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, sdkerrors.NewNetworkError(op, err)
	}
	return resp, nil
}
