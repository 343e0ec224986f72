package tui

import "github.com/soulspace/soulscribe/internal/cache"

type generatedMsg struct {
	topic string
	doc   string
}

type generateErrMsg struct {
	topic string
	err   error
}

type topicsLoadedMsg struct {
	entries []cache.Entry
}

type savedMsg struct {
	path string
}

type saveErrMsg struct {
	err error
}

type updateAvailableMsg struct {
	version string
}
