package minitable

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type DBFile interface {
	io.ReadSeeker
	io.ReaderAt
	io.WriterAt
	io.Closer
}

type pagerImpl struct {
	totalPages uint32 // total number of pages

	// pages is a sparse array where index = page index,
	// nil entries are pages that were never loaded
	pages []*Page

	file     DBFile
	fileSize int64

	logger *zap.Logger
}

// NewPager opens the database file and records its current length.
func NewPager(file DBFile, logger *zap.Logger) (*pagerImpl, error) {
	aPager := &pagerImpl{
		file:   file,
		pages:  make([]*Page, MaxPages),
		logger: logger,
	}

	fileSize, err := aPager.file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	aPager.fileSize = fileSize

	// Basic check to verify file size is a multiple of page size (4096B)
	if fileSize%PageSize != 0 {
		return nil, fmt.Errorf("db file size is not divisible by page size: %d", fileSize)
	}

	totalPages := fileSize / PageSize
	if totalPages > MaxPages {
		return nil, fmt.Errorf("db file size exceeds limit of %d pages", MaxPages)
	}
	aPager.totalPages = uint32(totalPages)

	return aPager, nil
}

func (p *pagerImpl) TotalPages() uint32 {
	return p.totalPages
}

// GetPage returns the cached page for the index, loading it from the
// file on first access. Indexes at or past the current page count hand
// out a fresh zero filled page without touching the file, which is how
// the table grows.
func (p *pagerImpl) GetPage(ctx context.Context, pageIdx uint32) (*Page, error) {
	if pageIdx >= MaxPages {
		return nil, fmt.Errorf("page index %d reached limit of max pages %d", pageIdx, MaxPages)
	}

	if aPage := p.pages[pageIdx]; aPage != nil {
		return aPage, nil
	}

	// Cache miss, allocate a zero filled buffer and fill it from the
	// file if the file already covers this offset
	buf := make([]byte, PageSize)
	if pageIdx < p.totalPages {
		if _, err := p.file.ReadAt(buf, int64(pageIdx)*PageSize); err != nil && err != io.EOF {
			return nil, err
		}
	}

	aLeaf := NewLeafNode()
	if _, err := aLeaf.Unmarshal(buf); err != nil {
		return nil, fmt.Errorf("unmarshal page %d: %w", pageIdx, err)
	}
	if aLeaf.Header.IsInternal {
		return nil, fmt.Errorf("page %d is an internal node, tree only has a root leaf", pageIdx)
	}

	aPage := &Page{Index: pageIdx, LeafNode: aLeaf}
	if pageIdx == RootPageIdx {
		aPage.LeafNode.Header.IsRoot = true
	}
	p.pages[pageIdx] = aPage

	if pageIdx >= p.totalPages {
		p.totalPages = pageIdx + 1
	}

	p.logger.Sugar().With("page_index", int(pageIdx)).Debug("loaded page")

	return aPage, nil
}

// Flush writes size bytes of the page back to the file at the page's
// offset. Flushing a page that was never loaded is a programming error.
func (p *pagerImpl) Flush(ctx context.Context, pageIdx uint32, size int64) error {
	if pageIdx >= MaxPages {
		return fmt.Errorf("page index %d reached limit of max pages %d", pageIdx, MaxPages)
	}

	aPage := p.pages[pageIdx]
	if aPage == nil {
		return fmt.Errorf("flushing nil page %d", pageIdx)
	}
	if aPage.LeafNode == nil {
		return fmt.Errorf("error flushing, page %d is not a leaf node", pageIdx)
	}

	buf := make([]byte, PageSize)
	if _, err := aPage.LeafNode.Marshal(buf); err != nil {
		return err
	}

	if _, err := p.file.WriteAt(buf[:size], int64(pageIdx)*PageSize); err != nil {
		return err
	}

	p.logger.Sugar().With("page_index", int(pageIdx)).Debug("flushed page")

	return nil
}

// FlushAll writes every cached page back to the file, whole pages.
func (p *pagerImpl) FlushAll(ctx context.Context) error {
	var err error
	for pageIdx := uint32(0); pageIdx < p.totalPages; pageIdx++ {
		if p.pages[pageIdx] == nil {
			// Never loaded, file copy is still current
			continue
		}
		err = multierr.Append(err, p.Flush(ctx, pageIdx, PageSize))
	}
	return err
}

func (p *pagerImpl) Close() error {
	return p.file.Close()
}
