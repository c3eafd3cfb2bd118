// Package ana is a client for the legacy XML web service of the Agência Nacional de
// Águas (ServiceANA.asmx).
//
// Two endpoints are used:
//   - HidroInventario lists the stations measuring flow, rainfall or gauge level,
//     optionally filtered by state and city.
//   - HidroSerieHistorica returns the historical series of one station, one XML record
//     per month and consistency level.
//
// Assemble fetches many stations concurrently and merges their daily series into a
// Matrix: one row per consecutive day, one column per station.
package ana
