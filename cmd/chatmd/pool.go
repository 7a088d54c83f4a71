package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-chatmd"
)

// ErrPoolInit is recorded for files a worker could not convert because it
// failed to obtain a converter.
var ErrPoolInit = errors.New("failed to initialize converter")

// CLIConverter is the part of chatmd.Converter the CLI depends on.
type CLIConverter interface {
	Convert(ctx context.Context, input chatmd.Input) (*chatmd.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*chatmd.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// converterPool adapts chatmd.ConverterPool to Pool.
type converterPool struct {
	pool *chatmd.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

func newConverterPool(size int, opts ...chatmd.Option) Pool {
	return &converterPool{pool: chatmd.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire() (CLIConverter, error) {
	c, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release panics when c did not come from Acquire (programmer error).
func (p *converterPool) Release(c CLIConverter) {
	conv, ok := c.(*chatmd.Converter)
	if !ok {
		panic(fmt.Sprintf("converterPool.Release: unexpected type %T", c))
	}
	p.pool.Release(conv)
}

func (p *converterPool) Size() int    { return p.pool.Size() }
func (p *converterPool) Close() error { return p.pool.Close() }
