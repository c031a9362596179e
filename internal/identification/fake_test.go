package identification

import (
	"context"
	"fmt"

	"discsub/internal/redump"
)

type fakeCatalog struct {
	results  map[string][]int
	pages    map[int]string
	searches []string
	fetches  []int
	login    redump.LoginResult
	loginErr error
	fetchErr error
	cancel   context.CancelFunc
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.searches = append(f.searches, query)
	return f.results[query], nil
}

func (f *fakeCatalog) FetchDetail(ctx context.Context, id int) (string, error) {
	f.fetches = append(f.fetches, id)
	if f.cancel != nil {
		f.cancel()
		return "", ctx.Err()
	}
	if f.fetchErr != nil {
		return "", f.fetchErr
	}
	page, ok := f.pages[id]
	if !ok {
		return "", fmt.Errorf("no page for %d", id)
	}
	return page, nil
}

func (f *fakeCatalog) Login(context.Context, string, string) (redump.LoginResult, error) {
	return f.login, f.loginErr
}

func romLine(name, sha1 string) string {
	return fmt.Sprintf(`<rom name="%s" size="1000" crc="00000000" md5="00000000000000000000000000000000" sha1="%s" />`, name, sha1)
}
