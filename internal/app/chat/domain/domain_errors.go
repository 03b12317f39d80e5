package domain

import "errors"

var (
	ErrEmptyQuery   = errors.New("query is blank")
	ErrAdvisorBusy  = errors.New("advisor is still answering the previous query")
	ErrNoPendingAsk = errors.New("no query is awaiting an answer")
)
