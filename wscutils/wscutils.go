// Package wscutils holds the request and response envelope shared by the
// numbername web services, and the helpers that build error messages for it.
package wscutils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Request represents the standard structure of a request to the web service.
type Request struct {
	Data any `json:"data" binding:"required"`
}

// Response represents the standard structure of a response of the web service.
type Response struct {
	Status   string         `json:"status"`
	Data     any            `json:"data"`
	Messages []ErrorMessage `json:"messages"`
}

// ErrorMessage defines the format of error part of the standard response object
type ErrorMessage struct {
	MsgID   int      `json:"msgid"`
	ErrCode string   `json:"errcode"`
	Field   *string  `json:"field,omitempty"`
	Vals    []string `json:"vals,omitempty"`
}

var validate = validator.New()

// WscValidate validates data according to its struct tags and returns one
// ErrorMessage per failed field. The validator tag is used as the errcode;
// getVals supplies the request-specific values for each failure.
func WscValidate[T any](data T, getVals func(err validator.FieldError) []string) []ErrorMessage {
	var validationErrors []ErrorMessage

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, err := range validationErrs {
			vals := getVals(err)
			field := err.Field()
			validationErrors = append(validationErrors, BuildErrorMessage(err.Tag(), &field, vals...))
		}
	}
	return validationErrors
}

// BuildErrorMessage generates an ErrorMessage for errcode. Unknown errcodes
// get the message ID of ErrcodeUnknown.
//
//	BuildErrorMessage("invalid_number", nil)
//	BuildErrorMessage("max", &field, "10000", "9999")
func BuildErrorMessage(errcode string, fieldName *string, vals ...string) ErrorMessage {
	msgid, exists := MsgID(errcode)
	if !exists {
		log.Printf("Unrecognized errcode: %s", errcode)
		msgid, _ = MsgID(ErrcodeUnknown)
	}

	return ErrorMessage{
		MsgID:   msgid,
		ErrCode: errcode,
		Field:   fieldName,
		Vals:    vals,
	}
}

// NewResponse is a helper function to create a new web service response
func NewResponse(status string, data any, messages []ErrorMessage) *Response {
	return &Response{
		Status:   status,
		Data:     data,
		Messages: messages,
	}
}

// BindJSON binds the "data" member of the request envelope into data. On
// failure it has already written a 400 invalid_json response.
func BindJSON(c *gin.Context, data any) error {
	req := Request{Data: data}
	if err := c.ShouldBindJSON(&req); err != nil {
		SendErrorResponse(c, NewErrorResponse(ErrcodeInvalidJson))
		return err
	}
	return nil
}

// NewErrorResponse creates a standard error response with a single message.
func NewErrorResponse(errcode string) *Response {
	return NewResponse(ErrorStatus, nil, []ErrorMessage{BuildErrorMessage(errcode, nil)})
}

// NewSuccessResponse simplifies the process of creating a standard success response
func NewSuccessResponse(data any) *Response {
	return NewResponse(SuccessStatus, data, nil)
}

// SendSuccessResponse sends a JSON response.
func SendSuccessResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusOK, response)
}

// SendErrorResponse sends a JSON error response.
func SendErrorResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusBadRequest, response)
}
