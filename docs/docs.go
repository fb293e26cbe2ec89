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
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/segments": {
            "get": {
                "tags": ["segments"],
                "summary": "List trade segments",
                "parameters": [{"type": "boolean", "name": "grouped", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/segments/{segment_id}": {
            "get": {
                "tags": ["segments"],
                "summary": "Get a trade segment",
                "parameters": [{"type": "string", "name": "segment_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/projects/{project_id}/quotes": {
            "get": {
                "tags": ["quotes"],
                "summary": "List the quote requests of a project",
                "parameters": [{"type": "string", "name": "project_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            },
            "post": {
                "tags": ["quotes"],
                "summary": "Request vendor quotes",
                "parameters": [
                    {"type": "string", "name": "project_id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateQuoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{quote_id}": {
            "get": {
                "tags": ["quotes"],
                "summary": "Get a quote request",
                "parameters": [{"type": "string", "name": "quote_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/vendor-services": {
            "get": {"tags": ["vendor-services"], "summary": "List my service offerings", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["vendor-services"],
                "summary": "Create a service offering",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateVendorServiceRequest"}}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/vendor-services/{service_id}": {
            "put": {
                "tags": ["vendor-services"],
                "summary": "Update a service offering",
                "parameters": [{"type": "string", "name": "service_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            },
            "delete": {
                "tags": ["vendor-services"],
                "summary": "Delete a service offering",
                "parameters": [{"type": "string", "name": "service_id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/vendor/impressions": {
            "get": {"tags": ["vendor-billing"], "summary": "List my leads", "responses": {"200": {"description": "OK"}}}
        },
        "/vendor/billing": {
            "get": {"tags": ["vendor-billing"], "summary": "Get my lead balance", "responses": {"200": {"description": "OK"}}}
        },
        "/vendor/billing/invoice": {
            "get": {"tags": ["vendor-billing"], "summary": "Invoice my pending leads", "produces": ["application/pdf"], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}}
        },
        "/vendor/billing/export": {
            "get": {"tags": ["vendor-billing"], "summary": "Export my leads as a spreadsheet", "responses": {"200": {"description": "OK"}}}
        },
        "/vendor/billing/settle": {
            "post": {"tags": ["vendor-billing"], "summary": "Pay my balance due", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}}
        },
        "/vendor/billing/payments": {
            "get": {"tags": ["vendor-billing"], "summary": "List my settlements", "responses": {"200": {"description": "OK"}}}
        },
        "/vendor/billing/payments/{payment_id}": {
            "get": {
                "tags": ["vendor-billing"],
                "summary": "Get one settlement",
                "parameters": [{"type": "string", "name": "payment_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "field": {"type": "string"}}
        },
        "request.CreateQuoteRequest": {
            "type": "object",
            "properties": {
                "segment": {"type": "string"},
                "project_sqft": {"type": "number"},
                "options": {"type": "object"},
                "chat_id": {"type": "string"}
            }
        },
        "request.CreateVendorServiceRequest": {
            "type": "object",
            "required": ["company_name", "segment"],
            "properties": {
                "company_name": {"type": "string"},
                "company_description": {"type": "string"},
                "segment": {"type": "string"},
                "countries_served": {"type": "array", "items": {"type": "string"}},
                "regions_served": {"type": "array", "items": {"type": "string"}},
                "pricing_rules": {"type": "string"},
                "lead_time": {"type": "string"},
                "notes": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "TradeQuote API",
	Description:      "Vendor quotes for construction projects, with per-lead vendor billing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
