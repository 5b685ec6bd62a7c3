package content

import "errors"

var (
	ErrPostNotFound     = errors.New("content: post not found")
	ErrTitleRequired    = errors.New("content: title is required")
	ErrDateInvalid      = errors.New("content: date must use YYYY-MM-DD form")
	ErrCategoryInvalid  = errors.New("content: category is not one of rust, blockchain, personal")
	ErrSlugInvalid      = errors.New("content: slug contains invalid characters")
	ErrDocumentRequired = errors.New("content: document is required")
)
