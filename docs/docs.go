// Package docs registers the OpenAPI document served under /swagger.
package docs

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
        "/api/dev-events": {
            "get": {
                "description": "Returns every event that has not been deleted, with its speakers.",
                "produces": ["application/json"],
                "tags": ["dev-events"],
                "summary": "List active events",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Creates an active event without speakers. The Location header points at the new resource.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dev-events"],
                "summary": "Create an event",
                "parameters": [
                    {
                        "description": "Event data",
                        "name": "event",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.EventInputRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/domain.Event"},
                        "headers": {
                            "Location": {"type": "string", "description": "absolute URL of the created event"}
                        }
                    },
                    "400": {
                        "description": "error.code: bad_request",
                        "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}
                    },
                    "500": {
                        "description": "error.code: internal_error",
                        "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}
                    }
                }
            }
        },
        "/api/dev-events/{id}": {
            "get": {
                "description": "Returns the event with its speakers. Deleted events are returned too, with isDeleted set.",
                "produces": ["application/json"],
                "tags": ["dev-events"],
                "summary": "Get an event by ID",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "event not found"},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Replaces title, description and dates. Deleted events can still be updated.",
                "consumes": ["application/json"],
                "tags": ["dev-events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Event data",
                        "name": "event",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.EventInputRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "updated"},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "event not found"},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Soft-deletes the event. It disappears from the list but stays readable by ID.",
                "tags": ["dev-events"],
                "summary": "Delete an event",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "deleted"},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "event not found"},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/dev-events/{id}/speakers": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["dev-events"],
                "summary": "Add a speaker to an event",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Speaker data",
                        "name": "speaker",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.SpeakerInputRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "speaker added"},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "event not found"},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.EventInputRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "GopherCon"},
                "description": {"type": "string", "maxLength": 200, "example": "Annual Go conference"},
                "startDate": {"type": "string", "format": "date-time", "example": "2024-06-01T09:00:00Z"},
                "endDate": {"type": "string", "format": "date-time", "example": "2024-06-03T18:00:00Z"}
            }
        },
        "controllers.SpeakerInputRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "example": "Rob Pike"},
                "talkTitle": {"type": "string", "example": "Concurrency is not parallelism"},
                "talkDescription": {"type": "string"},
                "linkedInProfile": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "startDate": {"type": "string", "format": "date-time"},
                "endDate": {"type": "string", "format": "date-time"},
                "isDeleted": {"type": "boolean"},
                "speakers": {"type": "array", "items": {"$ref": "#/definitions/domain.Speaker"}}
            }
        },
        "domain.Speaker": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "devEventId": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "talkTitle": {"type": "string"},
                "talkDescription": {"type": "string"},
                "linkedInProfile": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dev Events API",
	Description:      "Catalog of developer events and their speakers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
