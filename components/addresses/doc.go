// Package addresses provides the address lookup service behind the form
// core's suggestion flow: a fixed catalogue of sample addresses, search
// helpers, and a small net/http handler that returns matches as a bare JSON
// array.
//
// The default handler responds to GET and HEAD requests, matches the query
// parameter case-insensitively against street, city, postcode, and the
// combined display string, and returns at most five results in catalogue
// order. An empty query matches everything. The backing data is loaded from
// the embedded catalogue under data/addresses.json; the embedded OpenAPI
// document under openapi.yaml describes the wire contract.
package addresses
