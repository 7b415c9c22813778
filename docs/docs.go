// Package docs holds the OpenAPI description served under /swagger. Keep it
// in step with the handler annotations when routes change.
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
        "/api/health": {
            "get": {
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.HealthResponse"
                        }
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "system"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Register an account",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Phone, password and optional invite code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.RegisterRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.AuthResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Log out",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current account",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.MeResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/team": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Referral team",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.TeamResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/account/withdraw-password": {
            "post": {
                "tags": [
                    "account"
                ],
                "summary": "Set withdrawal password",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "New withdrawal password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.WithdrawPasswordRequest"
                        }
                    }
                ]
            }
        },
        "/api/account/bank": {
            "put": {
                "tags": [
                    "account"
                ],
                "summary": "Update bank details",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Bank account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.BankDetails"
                        }
                    }
                ]
            }
        },
        "/api/plans": {
            "get": {
                "tags": [
                    "plans"
                ],
                "summary": "List plans",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/wallet": {
            "get": {
                "tags": [
                    "wallet"
                ],
                "summary": "Wallet balance",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/wallet.BalanceResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/wallet/transactions": {
            "get": {
                "tags": [
                    "wallet"
                ],
                "summary": "Wallet journal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/purchases/buy": {
            "post": {
                "tags": [
                    "purchases"
                ],
                "summary": "Buy a plan from the wallet",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/purchase.BuyResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "402": {
                        "description": "Payment Required",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan to buy",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/purchase.BuyRequest"
                        }
                    }
                ]
            }
        },
        "/api/purchases/create-order": {
            "post": {
                "tags": [
                    "purchases"
                ],
                "summary": "Open a gateway order",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/purchase.OrderResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan id or recharge amount in rupees",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/purchase.CreateOrderRequest"
                        }
                    }
                ]
            }
        },
        "/api/purchases/verify": {
            "post": {
                "tags": [
                    "purchases"
                ],
                "summary": "Verify a gateway payment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/purchase.VerifyResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Gateway callback fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/purchase.VerifyRequest"
                        }
                    }
                ]
            }
        },
        "/api/purchases/my": {
            "get": {
                "tags": [
                    "purchases"
                ],
                "summary": "My purchases",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/purchases/plans": {
            "get": {
                "tags": [
                    "purchases"
                ],
                "summary": "My plan instances",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/withdraws/request": {
            "post": {
                "tags": [
                    "withdraws"
                ],
                "summary": "Request a withdrawal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/withdrawal.RequestResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "402": {
                        "description": "Payment Required",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Amount in rupees and withdrawal password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/withdrawal.Request"
                        }
                    }
                ]
            }
        },
        "/api/withdraws/my": {
            "get": {
                "tags": [
                    "withdraws"
                ],
                "summary": "My withdrawals",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/recharges": {
            "post": {
                "tags": [
                    "recharges"
                ],
                "summary": "Submit a manual recharge",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/recharge.Recharge"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Amount, UTR and method",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/recharge.SubmitRequest"
                        }
                    }
                ]
            }
        },
        "/api/recharges/my": {
            "get": {
                "tags": [
                    "recharges"
                ],
                "summary": "My recharges",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "List users (admin)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/users/{id}": {
            "delete": {
                "tags": [
                    "admin"
                ],
                "summary": "Delete a user (admin)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/users/{id}/block": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Block or unblock a user (admin)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.BlockResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/withdraws": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "Latest withdrawals",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/withdraws/{id}/process": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Accept or decline a withdrawal",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/withdrawal.Withdrawal"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Withdrawal ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "accept or decline",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/withdrawal.ProcessRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/purchases": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "Latest purchases",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/recharges": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "Latest recharges",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/recharges/{id}/process": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Approve or decline a recharge",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/recharge.Recharge"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Recharge ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "approve or decline",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/recharge.ProcessRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/plans": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Create a plan",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/plan.Plan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan terms in rupees",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/plan.CreatePlanRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        },
        "/api/admin/payouts": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Run daily payouts now",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/payout.Report"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "AdminPassword": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "something went wrong"
                }
            }
        },
        "api.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "user.RegisterRequest": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                },
                "pass": {
                    "type": "string"
                },
                "invite": {
                    "type": "string"
                }
            },
            "required": [
                "phone",
                "pass"
            ]
        },
        "user.LoginRequest": {
            "type": "object",
            "properties": {
                "phone": {
                    "type": "string"
                },
                "pass": {
                    "type": "string"
                }
            },
            "required": [
                "phone",
                "pass"
            ]
        },
        "user.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "phone": {
                    "type": "string"
                },
                "wallet_paise": {
                    "type": "integer"
                },
                "invite_code": {
                    "type": "string"
                },
                "blocked": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "user.AuthResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/user.User"
                }
            }
        },
        "user.MeResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/user.User"
                }
            }
        },
        "user.TeamResponse": {
            "type": "object",
            "properties": {
                "inviteCode": {
                    "type": "string"
                },
                "team": {
                    "type": "object"
                }
            }
        },
        "user.WithdrawPasswordRequest": {
            "type": "object",
            "properties": {
                "withdrawPass": {
                    "type": "string"
                }
            },
            "required": [
                "withdrawPass"
            ]
        },
        "user.BankDetails": {
            "type": "object",
            "properties": {
                "holder": {
                    "type": "string"
                },
                "account": {
                    "type": "string"
                },
                "ifsc": {
                    "type": "string"
                },
                "bank": {
                    "type": "string"
                }
            },
            "required": [
                "holder",
                "account",
                "ifsc",
                "bank"
            ]
        },
        "user.BlockResponse": {
            "type": "object",
            "properties": {
                "blocked": {
                    "type": "boolean"
                }
            }
        },
        "wallet.BalanceResponse": {
            "type": "object",
            "properties": {
                "wallet_paise": {
                    "type": "integer"
                },
                "wallet": {
                    "type": "string"
                }
            }
        },
        "plan.Plan": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price_paise": {
                    "type": "integer"
                },
                "daily_paise": {
                    "type": "integer"
                },
                "days": {
                    "type": "integer"
                },
                "image": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "timer_hours": {
                    "type": "integer"
                },
                "diamond": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "plan.CreatePlanRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "daily": {
                    "type": "number"
                },
                "days": {
                    "type": "integer",
                    "maximum": 36500,
                    "minimum": 0
                },
                "image": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "timerHours": {
                    "type": "integer",
                    "maximum": 87600,
                    "minimum": 0
                },
                "diamond": {
                    "type": "boolean"
                }
            },
            "required": [
                "name"
            ]
        },
        "purchase.BuyRequest": {
            "type": "object",
            "properties": {
                "planId": {
                    "type": "string"
                }
            },
            "required": [
                "planId"
            ]
        },
        "purchase.BuyResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "wallet_paise": {
                    "type": "integer"
                }
            }
        },
        "purchase.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "planId": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                }
            }
        },
        "purchase.OrderResponse": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "amount": {
                    "type": "integer"
                },
                "order_id": {
                    "type": "string"
                },
                "purchase_id": {
                    "type": "integer"
                }
            }
        },
        "purchase.VerifyRequest": {
            "type": "object",
            "properties": {
                "razorpay_payment_id": {
                    "type": "string"
                },
                "razorpay_order_id": {
                    "type": "string"
                },
                "razorpay_signature": {
                    "type": "string"
                }
            }
        },
        "purchase.VerifyResponse": {
            "type": "object",
            "properties": {
                "verified": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "withdrawal.Request": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 150
                },
                "withdrawPass": {
                    "type": "string"
                }
            },
            "required": [
                "withdrawPass"
            ]
        },
        "withdrawal.Withdrawal": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "phone": {
                    "type": "string"
                },
                "amount_paise": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "processed_at": {
                    "type": "string"
                }
            }
        },
        "withdrawal.RequestResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "wallet_paise": {
                    "type": "integer"
                },
                "withdraw": {
                    "$ref": "#/definitions/withdrawal.Withdrawal"
                }
            }
        },
        "withdrawal.ProcessRequest": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "required": [
                "action"
            ]
        },
        "recharge.SubmitRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 500
                },
                "utr": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                }
            },
            "required": [
                "utr"
            ]
        },
        "recharge.Recharge": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "phone": {
                    "type": "string"
                },
                "amount_paise": {
                    "type": "integer"
                },
                "utr": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "processed_at": {
                    "type": "string"
                }
            }
        },
        "recharge.ProcessRequest": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                }
            },
            "required": [
                "action"
            ]
        },
        "payout.Report": {
            "type": "object",
            "properties": {
                "started_at": {
                    "type": "string"
                },
                "finished_at": {
                    "type": "string"
                },
                "disbursed_paise": {
                    "type": "integer"
                },
                "disbursed": {
                    "type": "string"
                },
                "users_credited": {
                    "type": "integer"
                },
                "instances_credited": {
                    "type": "integer"
                },
                "users_failed": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "AdminPassword": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Redbull API",
	Description:      "Referral investment backend: plans, wallet, payouts and withdrawals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
