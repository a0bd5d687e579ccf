package pipeline

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/lexatic/prev/internal/cache"
	"github.com/lexatic/prev/internal/conllu"
	"github.com/lexatic/prev/internal/model"
)

// LoadDocument reads one parsed input file, going through the
// document cache unless the run disables or refreshes it. The cache
// key is the input's content hash, so edits invalidate naturally.
func (p *Pipeline) LoadDocument(path string) (*model.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var key string
	if p.cache != nil {
		key = cache.DocumentKey(content)
		if !p.cfg.Cache.Refresh {
			if data, found := p.cache.Get(key); found {
				doc, err := model.UnmarshalDocument(data)
				if err == nil {
					p.logger.Debugw("document cache hit", "path", path)
					doc.Source = path
					return doc, nil
				}
				p.logger.Warnw("dropping unreadable cache entry", "path", path, "error", err)
				_ = p.cache.Delete(key)
			}
		}
	}

	doc, err := conllu.Read(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	doc.Source = path

	if p.cache != nil {
		if data, err := model.MarshalDocument(doc); err == nil {
			if err := p.cache.Set(key, data, 0); err != nil {
				p.logger.Warnw("failed to cache document", "path", path, "error", err)
			}
		}
	}
	return doc, nil
}
