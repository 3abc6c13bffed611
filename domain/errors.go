package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidChainId    = errors.New("invalid chain id")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// ErrStaleScan is returned when a scan finished after the wallet context it
	// was started with had been replaced. The result is discarded.
	ErrStaleScan = errors.New("stale scan")
)

// precondition failures, detected before any chain call
var (
	ErrNoWallet           = &PreconditionError{Reason: "no wallet connected"}
	ErrUnsupportedNetwork = &PreconditionError{Reason: "unsupported network"}
	ErrInvalidPrice       = &PreconditionError{Reason: "invalid price"}
	ErrSoldOut            = &PreconditionError{Reason: "max supply reached"}
	ErrNoSigner           = &PreconditionError{Reason: "no signer for wallet"}
	ErrInvalidTokenId     = &PreconditionError{Reason: "invalid token id"}
)

type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// Is matches any precondition error carrying the same reason.
func (e *PreconditionError) Is(target error) bool {
	t, ok := target.(*PreconditionError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

// ChainCallError is a failed contract read or write. TokenId is nil for calls
// that are not about a single token.
type ChainCallError struct {
	Method  string
	TokenId *TokenId
	Reason  string
	Err     error
}

func (e *ChainCallError) Error() string {
	msg := "chain call " + e.Method
	if e.TokenId != nil {
		msg += fmt.Sprintf("(%d)", *e.TokenId)
	}
	msg += " failed: " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ChainCallError) Unwrap() error {
	return e.Err
}

// MetadataError is a failed metadata retrieval. It never leaves the metadata
// fetcher except through FetchRaw.
type MetadataError struct {
	Uri string
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("metadata %s: %v", e.Uri, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}
