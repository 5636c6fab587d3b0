package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
	"github.com/animalspotter/animalspotter/client/internal/types"
)

var (
	errMissingToken = errors.New(`response has no "token" field`)
	errNullList     = errors.New("response is null, want a JSON array")
)

// ListAnimals fetches every known animal name. The token is checked before
// anything touches the network: an empty token is NoAuth and sends nothing.
func ListAnimals(ctx context.Context, rc *resty.Client, tok types.AuthToken) ([]types.AnimalName, error) {
	if tok.IsZero() {
		return nil, sdkerrors.NewNoAuth(OpListAnimals)
	}
	if err := checkCtx(ctx, OpListAnimals); err != nil {
		return nil, err
	}

	resp, err := rc.R().
		SetContext(ctx).
		SetAuthToken(tok.Token).
		Get(PathAnimals)
	if err != nil {
		return nil, sdkerrors.NewNetworkError(OpListAnimals, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, sdkerrors.NewHTTPError(OpListAnimals, resp.StatusCode(), resp.Body(), true)
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, sdkerrors.NewNoData(OpListAnimals, resp.StatusCode())
	}
	var names []types.AnimalName
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, sdkerrors.NewDecodeError(OpListAnimals, body, err)
	}
	if names == nil {
		return nil, sdkerrors.NewDecodeError(OpListAnimals, body, errNullList)
	}
	return names, nil
}
