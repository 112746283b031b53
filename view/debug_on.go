//go:build rangesdebug

package view

const debug = true
