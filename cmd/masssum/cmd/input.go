package cmd

import (
	"io"
	"io/ioutil"
	"os"
	"sync"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/mem"
	"massnet.org/masssum/logging"
	"massnet.org/masssum/sha256"
)

const stdinName = "-"

// ErrMemoryNotEnough is returned for inputs larger than the memory
// currently available, since every input is hashed in one piece.
var ErrMemoryNotEnough = errors.New("not enough memory to load input")

// availableMemory is replaced in tests.
var availableMemory = func() (uint64, error) {
	stat, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return stat.Available, nil
}

func checkMemory(size uint64) error {
	available, err := availableMemory()
	if err != nil {
		return errors.Wrap(err, "query available memory")
	}
	if size > available {
		return errors.Wrapf(ErrMemoryNotEnough, "need %d bytes, %d available", size, available)
	}
	return nil
}

// sharedInput reads its reader at most once and hands the same bytes to
// every caller, so "-" may be named several times.
type sharedInput struct {
	once sync.Once
	r    io.Reader
	data []byte
	err  error
}

func newSharedInput(r io.Reader) *sharedInput {
	return &sharedInput{r: r}
}

func (s *sharedInput) bytes() ([]byte, error) {
	s.once.Do(func() {
		if s.r == nil {
			s.err = errors.New("no stdin available")
			return
		}
		s.data, s.err = ioutil.ReadAll(s.r)
	})
	return s.data, s.err
}

// readInput loads the named file, or stdin for "-", into memory.
func readInput(name string, stdin *sharedInput) ([]byte, error) {
	if name == stdinName {
		if stdin == nil {
			return nil, errors.New("no stdin available")
		}
		return stdin.bytes()
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errors.Errorf("%s is a directory", name)
	}
	if err := checkMemory(uint64(fi.Size())); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return ioutil.ReadFile(name)
}

type hashResult struct {
	name   string
	size   int
	digest sha256.Digest
	err    error
}

func hashInput(name string, stdin *sharedInput) hashResult {
	res := hashResult{name: name}
	data, err := readInput(name, stdin)
	if err != nil {
		res.err = err
		return res
	}
	res.size = len(data)
	res.digest, res.err = sha256.Sum256(data)
	return res
}

// hashInputs hashes names on a pool of workers. Results keep the order of
// names.
func hashInputs(names []string, workers int, stdin io.Reader) ([]hashResult, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	shared := newSharedInput(stdin)
	results := make([]hashResult, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		i, name := i, name
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = hashInput(name, shared)
			logging.VPrint(logging.DEBUG, "hashed input", logging.LogFormat{
				"name": name,
				"size": results[i].size,
				"err":  results[i].err,
			})
		})
		if err != nil {
			wg.Done()
			results[i] = hashResult{name: name, err: errors.Wrap(err, "submit hash job")}
		}
	}
	wg.Wait()

	return results, nil
}
