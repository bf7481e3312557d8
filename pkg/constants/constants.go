package constants

import "github.com/go-playground/validator/v10"

type ContextKey string

const (
	UserKey   ContextKey = "user"
	TokenKey  ContextKey = "token"
	LoggerKey ContextKey = "logger"
)

var Validate = validator.New()
