package api

// Swagger document for the handlers in handlers.go. Keep in sync with their godoc annotations.

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get the health status of the API",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/schema": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "OpenAPI definitions describing the FourCC type",
                "produces": ["application/json"],
                "tags": ["schema"],
                "summary": "FourCC schema",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/fourcc/{code}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "The code must be exactly four bytes once URL-unescaped",
                "produces": ["application/json"],
                "tags": ["fourcc"],
                "summary": "Describe a code given as text",
                "parameters": [
                    {"type": "string", "description": "Four-byte code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Description"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/fourcc/u32/{value}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Accepts decimal, 0x hex, 0o octal or 0b binary",
                "produces": ["application/json"],
                "tags": ["fourcc"],
                "summary": "Describe the code for an integer",
                "parameters": [
                    {"type": "string", "description": "Unsigned 32-bit integer", "name": "value", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Description"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/fourcc/hex/{hex}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Eight hex digits, optionally prefixed with 0x; any byte values are allowed",
                "produces": ["application/json"],
                "tags": ["fourcc"],
                "summary": "Describe the code for raw bytes",
                "parameters": [
                    {"type": "string", "description": "Four bytes as hex", "name": "hex", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Description"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "FourCC": {
            "description": "Four-character code. Four bytes rendered as text; codes that are not valid UTF-8 are rendered with \\xHH escapes.",
            "type": "string",
            "title": "FourCC",
            "example": "uuid"
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "api.Description": {
            "type": "object",
            "properties": {
                "code": {"$ref": "#/definitions/FourCC"},
                "debug": {"type": "string"},
                "display": {"type": "string"},
                "hex": {"type": "string"},
                "printable": {"type": "boolean"},
                "uint32": {"type": "integer"},
                "utf8": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "fourcc REST API",
	Description:      "Conversions between four-character codes, integers and bytes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
