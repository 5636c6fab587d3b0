package client

import "github.com/animalspotter/animalspotter/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	Credentials = types.Credentials
	AuthToken   = types.AuthToken
	AnimalName  = types.AnimalName
)
