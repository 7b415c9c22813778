package main

import "github.com/Bhishaj9/redbull-backend/internal/cli"

// @title Redbull API
// @version 1.0
// @description Referral investment backend: plans, wallet, payouts and withdrawals.
// @host localhost:4000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey AdminPassword
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
