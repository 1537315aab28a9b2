// Package entities declares the form schemas of the admin dashboard
// (brands, locations, catalogue, access control, stock, todos and content)
// and builds the sealed validator registry used by the HTTP API and the CLI.
//
// Each kind is its own contract. Two kinds may look alike, for example
// brand and brand_item, without sharing rules.
//
// The typed records in this package mirror the normalized output and can be
// filled with validator.Result.Decode:
//
//	res, err := entities.Default().Validate(entities.KindCity, payload)
//	if err != nil {
//	    return err
//	}
//	var city entities.City
//	if err := res.Decode(&city); err != nil {
//	    return err // field errors or a decode failure
//	}
package entities
