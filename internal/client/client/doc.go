// Package client adapts the hosted backend-as-a-service for the employee
// client.
//
// # Overview
//
// The package provides:
//  1. The capability interfaces the controllers depend on: Auth (SignIn,
//     SignUp, SignOut, GetSession) and EmployeeStore (Query, QueryByID,
//     Insert, Update, Delete), joined in Client.
//  2. RESTClient, which speaks to the provider's auth gateway (/auth/v1) and
//     data gateway (/rest/v1) with the public API key, keeps the session in a
//     SessionStore and refreshes it when the access token expires.
//  3. AdminEndpoint, an EmailConfirmer calling this project's own server.
//
// # Error Handling
//
// Non-2xx answers surface as *netx.StatusError carrying the provider's own
// message, which the translator matches on. Failures below HTTP surface as
// *netx.TransportError. Missing configuration fails construction with a
// common.KindConfiguration error.
package client
