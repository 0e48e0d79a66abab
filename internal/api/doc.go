// Package api provides the customer REST API.
//
//	@title			Customer API
//	@version		1.0
//	@description	CRUD service for customer records
//	@BasePath		/api/v1
package api
