package model

import "errors"

var ErrBookNotFound = errors.New("Book not found")
