// Package models defines the persisted credential record.
package models
