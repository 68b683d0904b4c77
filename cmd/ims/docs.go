package main

// @title IMS Admin API
// @version 1.0
// @description Inventory and expense administration backend with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/ims-admin

// @license.name MIT
// @license.url https://github.com/tair/ims-admin/blob/main/LICENSE

// @host localhost:4000
// @BasePath /

// @tag.name Products
// @tag.description Product catalogue and stock levels

// @tag.name Users
// @tag.description Back-office users

// @tag.name Expenses
// @tag.description Expense ledger

// @tag.name Settings
// @tag.description Company settings and logo

// @tag.name Dashboard
// @tag.description Aggregates, combined data bundle and demo login
