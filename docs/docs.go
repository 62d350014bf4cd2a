// Package docs holds the Swagger document served under /swagger.
// Regenerate the full document from the handler annotations with:
//
//	swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "email": "support@maintenance-hub.local"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {},
    "tags": [
        {"name": "authentication"},
        {"name": "health"},
        {"name": "companies"},
        {"name": "users"},
        {"name": "machinery"},
        {"name": "service-orders"},
        {"name": "schedules"},
        {"name": "history"},
        {"name": "parts"},
        {"name": "tasks"},
        {"name": "calendar"},
        {"name": "bug-reports"},
        {"name": "tutorials"},
        {"name": "dashboard"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7008",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Maintenance Hub API",
	Description:      "Backend API for industrial maintenance management: machinery, service orders, preventive schedules, history, parts inventory, tasks and calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
