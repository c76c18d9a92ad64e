package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Child Therapy API",
        "description": "Therapy session tracking and progress reporting for pediatric care",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login and registration"},
        {"name": "Children", "description": "Child profiles and parent linking"},
        {"name": "Sessions", "description": "Therapy session logs"},
        {"name": "Reports", "description": "Weekly and monthly progress reports"},
        {"name": "Dashboards", "description": "Caseload summaries"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/register/doctor": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register doctor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterDoctorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/register/parent": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register parent",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterParentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Invalid child code"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/children": {
            "post": {
                "tags": ["Children"],
                "summary": "Create child",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateChildRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/children/verify-code": {
            "post": {
                "tags": ["Children"],
                "summary": "Verify child code",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyCodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/children/{id}": {
            "get": {
                "tags": ["Children"],
                "summary": "Get child",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "No access to child"},
                    "404": {"description": "Child not found"}
                }
            }
        },
        "/children/{id}/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List sessions for child",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "No access to child"}
                }
            }
        },
        "/doctor/children": {
            "get": {
                "tags": ["Children"],
                "summary": "List assigned children",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/parent/children": {
            "get": {
                "tags": ["Children"],
                "summary": "List linked children",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/parent/link-child": {
            "post": {
                "tags": ["Children"],
                "summary": "Link child to parent",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LinkChildRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Invalid child code"}
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Log therapy session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Child not found"}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Get session with quick scores",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Session not found"}
                }
            }
        },
        "/reports/weekly/{childId}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Weekly progress report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "childId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Child not found"}
                }
            }
        },
        "/reports/monthly/{childId}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Monthly progress report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "childId", "in": "path", "required": true, "type": "string"},
                    {"name": "month", "in": "query", "type": "integer"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid month"},
                    "404": {"description": "Child not found"}
                }
            }
        },
        "/reports/monthly/{childId}/pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Monthly progress report as PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "childId", "in": "path", "required": true, "type": "string"},
                    {"name": "month", "in": "query", "type": "integer"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "PDF document"},
                    "404": {"description": "Child not found"}
                }
            }
        },
        "/doctor/dashboard": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "Doctor dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/parent/dashboard": {
            "get": {
                "tags": ["Dashboards"],
                "summary": "Parent dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "user_type": {"type": "string", "enum": ["doctor", "parent"]}
            },
            "required": ["email", "password", "user_type"]
        },
        "RegisterDoctorRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "specialization": {"type": "string"}
            },
            "required": ["name", "email", "password", "specialization"]
        },
        "RegisterParentRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "password": {"type": "string"},
                "child_code": {"type": "string"}
            },
            "required": ["name", "email", "password"]
        },
        "CreateChildRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "diagnosis": {"type": "string"},
                "parent_email": {"type": "string"},
                "parent_phone": {"type": "string"},
                "parent_name": {"type": "string"}
            },
            "required": ["name", "age", "gender", "diagnosis"]
        },
        "VerifyCodeRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"}
            },
            "required": ["code"]
        },
        "LinkChildRequest": {
            "type": "object",
            "properties": {
                "child_code": {"type": "string"}
            },
            "required": ["child_code"]
        },
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "child_id": {"type": "string"},
                "session_date": {"type": "string", "format": "date-time"},
                "duration_minutes": {"type": "integer"},
                "activities_performed": {"type": "string"},
                "notes": {"type": "string"},
                "domains": {"type": "object"}
            },
            "required": ["child_id", "session_date", "duration_minutes", "activities_performed", "notes"]
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
                "meta": {"type": "object"}
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
