// Package record provides the WeeklyRecord type for Broadway weekly grosses.
//
// The record package handles record construction, week-ending date parsing,
// and ordering. Each record carries the four figures reported for one week
// (gross, attendance, show count) plus the timestamp of the scrape that
// produced it.
package record
