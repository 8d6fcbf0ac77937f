package api

import (
	"github.com/swaggo/swag"
)

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}

// swaggerDoc serves the embedded document to the Swagger UI as JSON.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	doc, err := Load()
	if err != nil {
		return "{}"
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}

	return string(data)
}
