package dto

import (
	"github.com/gin-gonic/gin"

	"jokeboard/src/core/domain"
	"jokeboard/src/core/usecase"
)

// Form field names.
const (
	FieldName       = "name"
	FieldContent    = "content"
	FieldLoginType  = "loginType"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldRedirectTo = "redirectTo"
)

func postValue(c *gin.Context, key string) domain.FormValue {
	v, ok := c.GetPostForm(key)
	return domain.FormValue{Value: v, Present: ok}
}

// JokeSubmission reads the new-joke form.
func JokeSubmission(c *gin.Context) domain.RawSubmission {
	return domain.RawSubmission{
		Name:    postValue(c, FieldName),
		Content: postValue(c, FieldContent),
	}
}

// LoginForm is the posted login form.
type LoginForm struct {
	LoginType  domain.FormValue
	Username   domain.FormValue
	Password   domain.FormValue
	RedirectTo domain.FormValue
}

// ParseLoginForm reads the login form.
func ParseLoginForm(c *gin.Context) LoginForm {
	return LoginForm{
		LoginType:  postValue(c, FieldLoginType),
		Username:   postValue(c, FieldUsername),
		Password:   postValue(c, FieldPassword),
		RedirectTo: postValue(c, FieldRedirectTo),
	}
}

// Complete reports whether every login field was posted.
func (f LoginForm) Complete() bool {
	return f.LoginType.Present && f.Username.Present && f.Password.Present && f.RedirectTo.Present
}

// ToInput converts the form to the usecase input.
func (f LoginForm) ToInput() usecase.LoginInput {
	return usecase.LoginInput{
		LoginType: f.LoginType.Value,
		Username:  f.Username.Value,
		Password:  f.Password.Value,
	}
}
