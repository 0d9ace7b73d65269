package domain

import "errors"

var (
	ErrNotFound  = errors.New("project not found")
	ErrNameTaken = errors.New("project name already taken")
)
