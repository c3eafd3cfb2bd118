// Package dadosbr provides the building blocks shared by the clients of Brazilian
// hydrology and power-sector open data.
//
// Four institutions are supported:
//   - ANA publishes hydrological stations and their daily series through a legacy
//     XML web service, see package ana.
//   - ONS, ANEEL and CCEE publish datasets through CKAN catalogs serving CSV
//     resources, see package ckan.
//
// This package holds the institution and measurement enumerations, the host table,
// the Value variant used for daily readings and the HTTP helpers. Package fetch ties
// everything together behind a single facade, and the dados command exposes it on the
// command line.
package dadosbr
