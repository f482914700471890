package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Faculty Option API",
        "description": "Course preference collection portal for faculty",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login and session"},
        {"name": "Directory", "description": "Faculty identity lookup"},
        {"name": "Catalog", "description": "Grouped course catalog"},
        {"name": "Selections", "description": "Course selection CRUD"},
        {"name": "Reports", "description": "Admin submission exports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login with employee ID and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current session claims",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/{employeeId}": {
            "get": {
                "tags": ["Directory"],
                "summary": "Resolve a faculty identity",
                "parameters": [
                    {"name": "employeeId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Employee not found"}
                }
            }
        },
        "/catalog": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Grouped course catalog for a cohort",
                "parameters": [
                    {"name": "cohort", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "string", "enum": ["ODD", "EVEN"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No courses for cohort"}
                }
            }
        },
        "/faculty/all": {
            "get": {
                "tags": ["Selections"],
                "summary": "Every saved selection row",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/faculty/{employeeId}": {
            "get": {
                "tags": ["Selections"],
                "summary": "Saved selection rows for one faculty member",
                "parameters": [
                    {"name": "employeeId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/faculty/submit": {
            "post": {
                "tags": ["Selections"],
                "summary": "Validate and persist a complete selection",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Submission already exists"},
                    "422": {"description": "Eligibility rule failed"}
                }
            }
        },
        "/faculty/update/{id}": {
            "put": {
                "tags": ["Selections"],
                "summary": "Change the priority of one row",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRowRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Eligibility rule failed"}
                }
            }
        },
        "/faculty/delete/{id}": {
            "delete": {
                "tags": ["Selections"],
                "summary": "Delete one saved selection row",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "428": {"description": "Confirmation required"}
                }
            }
        },
        "/faculty/delete-all/{employeeId}": {
            "delete": {
                "tags": ["Selections"],
                "summary": "Delete every saved row for one faculty member",
                "parameters": [
                    {"name": "employeeId", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "428": {"description": "Confirmation required"}
                }
            }
        },
        "/reports/selections/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the submissions report",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered report attachment"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "employee_id": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["employee_id", "password"]
        },
        "SubmitRequest": {
            "type": "object",
            "properties": {
                "employee_id": {"type": "string"},
                "entries": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SubmitEntry"}
                }
            },
            "required": ["employee_id", "entries"]
        },
        "SubmitEntry": {
            "type": "object",
            "properties": {
                "course_code": {"type": "string"},
                "priority": {"type": "string"}
            },
            "required": ["course_code"]
        },
        "UpdateRowRequest": {
            "type": "object",
            "properties": {
                "priority": {"type": "string"}
            },
            "required": ["priority"]
        },
        "SelectionRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "employee_id": {"type": "string"},
                "faculty_name": {"type": "string"},
                "cohort": {"type": "string"},
                "department": {"type": "string"},
                "course_code": {"type": "string"},
                "course_name": {"type": "string"},
                "category": {"type": "string"},
                "semester": {"type": "string"},
                "priority": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
