package httpx

import "github.com/gin-gonic/gin"

// ErrorBody — тело ответа с ошибкой.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Rule  string `json:"rule,omitempty"`
}

// AbortJSON — прервать цепочку обработчиков и ответить JSON-ошибкой.
func AbortJSON(c *gin.Context, status int, body ErrorBody) {
	c.AbortWithStatusJSON(status, body)
}

// AbortMessage — то же для ошибки без классификации.
func AbortMessage(c *gin.Context, status int, msg string) {
	AbortJSON(c, status, ErrorBody{Error: msg})
}
