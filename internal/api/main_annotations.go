// @title           barcart API
// @version         1.0
// @description     Drink recipe proxy. Reshapes the upstream cocktail database into a stable contract with pagination metadata. All endpoints are unauthenticated GETs.
// @BasePath        /api/v1
package api
