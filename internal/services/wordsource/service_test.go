package wordsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordscramble/internal/dependencies/mocks"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/storage/memory"
	"github.com/mcoot/wordscramble/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeFile(content string) string {
	path := filepath.Join(s.T().TempDir(), "start.txt")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ServiceSuite) TestPickBeforeLoadFails() {
	_, err := s.service.Pick()
	s.ErrorIs(err, model.ErrWordListEmpty)
}

func (s *ServiceSuite) TestPickUsesRandomIndex() {
	s.Require().NoError(s.service.LoadWords([]string{"silkworm", "absolute", "academic"}))
	s.random.QueueIntn(2, 0)

	first, err := s.service.Pick()
	s.Require().NoError(err)
	s.Equal("academic", first)

	second, err := s.service.Pick()
	s.Require().NoError(err)
	s.Equal("silkworm", second)

	s.Equal([]int{3, 3}, s.random.IntnCalls)
}

func (s *ServiceSuite) TestLoadWordsNormalizes() {
	s.Require().NoError(s.service.LoadWords([]string{"  SilkWorm ", "", "   "}))

	s.Equal(1, s.service.Count())
	word, err := s.service.Pick()
	s.Require().NoError(err)
	s.Equal("silkworm", word)
}

func (s *ServiceSuite) TestLoadWordsEmpty() {
	err := s.service.LoadWords([]string{"", " "})
	s.ErrorIs(err, model.ErrWordListEmpty)
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := s.writeFile("silkworm\nabsolute\n\n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(2, s.service.Count())

	saved, err := s.storage.GetStartWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"silkworm", "absolute"}, saved)
}

func (s *ServiceSuite) TestLoadFromMissingFile() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.ErrorIs(err, model.ErrWordListUnavailable)
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *ServiceSuite) TestLoadFromEmptyFile() {
	path := s.writeFile("\n\n")

	err := s.service.LoadFromFile(s.ctx, path)
	s.ErrorIs(err, model.ErrWordListEmpty)

	_, err = s.storage.GetStartWords(s.ctx)
	s.ErrorIs(err, model.ErrWordListEmpty)
}

func (s *ServiceSuite) TestLoadDefault() {
	err := s.service.LoadDefault(s.ctx)
	s.Require().NoError(err)
	s.Greater(s.service.Count(), 0)
}

func (s *ServiceSuite) TestLoadFromStorage() {
	_ = s.storage.SaveStartWords(s.ctx, []string{"silkworm"})

	err := s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	word, err := s.service.Pick()
	s.Require().NoError(err)
	s.Equal("silkworm", word)
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrWordListEmpty)
}
