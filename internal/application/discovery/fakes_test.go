package discovery_test

import (
	"context"
	"sync"
)

// In-memory collaborator fakes shared across the package tests.

type fakeSynonyms struct {
	syns []string
	err  error
}

func (f *fakeSynonyms) Synonyms(context.Context, string) ([]string, error) {
	return f.syns, f.err
}

type searchCall struct {
	engine string
	query  string
	apiKey string
	num    int
}

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []searchCall
	links   []string
	details []string

	searchFn func(call searchCall) []byte
	linkFn   func(link string) []byte
	detailFn func(link, apiKey string) []byte
}

func (f *fakeSearcher) Search(_ context.Context, engine, query, apiKey string, num int) []byte {
	call := searchCall{engine: engine, query: query, apiKey: apiKey, num: num}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
	if f.searchFn == nil {
		return nil
	}
	return f.searchFn(call)
}

func (f *fakeSearcher) FetchLink(_ context.Context, link string) []byte {
	f.mu.Lock()
	f.links = append(f.links, link)
	f.mu.Unlock()
	if f.linkFn == nil {
		return nil
	}
	return f.linkFn(link)
}

func (f *fakeSearcher) FetchDetail(_ context.Context, link, apiKey string) []byte {
	f.mu.Lock()
	f.details = append(f.details, link)
	f.mu.Unlock()
	if f.detailFn == nil {
		return nil
	}
	return f.detailFn(link, apiKey)
}

type fakeCrawler struct {
	mu    sync.Mutex
	terms []string

	searchFn func(term string) []byte
}

func (f *fakeCrawler) Search(_ context.Context, term string) []byte {
	f.mu.Lock()
	f.terms = append(f.terms, term)
	f.mu.Unlock()
	if f.searchFn == nil {
		return nil
	}
	return f.searchFn(term)
}
