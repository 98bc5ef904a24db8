package domain

import "errors"

var (
	ErrCatalogLoad          = errors.New("catalog load failed")
	ErrEmptyCatalog         = errors.New("customer catalog is empty")
	ErrInvalidSelection     = errors.New("invalid selection")
	ErrAtStart              = errors.New("already at the first step")
	ErrCorruptSession       = errors.New("corrupt session")
	ErrPersistenceWrite     = errors.New("persist session state")
	ErrNoSession            = errors.New("no session in progress")
	ErrInterviewComplete    = errors.New("interview is complete")
	ErrInterviewNotComplete = errors.New("interview is not complete")
	ErrStateKeyNotFound     = errors.New("state key not found")
)
