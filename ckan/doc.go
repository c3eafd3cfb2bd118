// Package ckan reads the open-data catalogs of ONS, ANEEL and CCEE.
//
// Those portals run CKAN: products are listed with the package_list action, their
// downloadable resources with package_show. Resources in CSV format are ';'-separated
// Latin-1 files, downloaded into a Table.
package ckan
