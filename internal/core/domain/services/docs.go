// Package services contains stateless domain services that implement business
// logic spanning multiple entities or requiring no entity state of their own.
//
// ReportCalculator aggregates order rows into the owner dashboard snapshot:
// date-window resolution, tolerant date parsing, peak-hour extraction from
// free-text times, and the top-N breakdowns (staff, items, hours, customers).
package services
