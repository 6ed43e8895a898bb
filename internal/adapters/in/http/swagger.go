package http

import (
	"sync"

	"backoffice/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// RegisterSwaggerDoc publishes the embedded OpenAPI document to swag, which
// echo-swagger reads when serving /swagger/doc.json. swag panics on duplicate
// registration, so only the first call registers.
func RegisterSwaggerDoc() error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	data, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	return nil
}
