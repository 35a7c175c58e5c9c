package model

// Package model defines the value types shared by the shell packages: panel
// placements, the settings cursor, acquisition states and acquired files.
// Enums are string-typed so they persist readably and compare cheaply.
