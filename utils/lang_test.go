package utils

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
)

var testMessage = &i18n.Message{
	ID:    "errors.test",
	Other: "Something went wrong",
}

func TestLocalizeDefaultMessage(t *testing.T) {
	assert.Equal(t, "Something went wrong", Localize("en", testMessage))
	assert.Equal(t, "Something went wrong", Localize("fr", testMessage))
}

func TestLocalizeFromBundle(t *testing.T) {
	dir, err := ioutil.TempDir("", "i18n")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	assert.NoError(t, ioutil.WriteFile(path.Join(dir, "en.yaml"), []byte("errors:\n  test: Oops\n"), 0600))
	assert.NoError(t, ioutil.WriteFile(path.Join(dir, "zh_tw.yaml"), []byte("errors:\n  test: 出錯了\n"), 0600))

	assert.NoError(t, InitI18NBundle(dir))
	defer func() {
		bundleLock.Lock()
		bundle = nil
		bundleLock.Unlock()
	}()

	assert.Equal(t, "Oops", Localize("en", testMessage))
	assert.Equal(t, "出錯了", Localize("zh-TW", testMessage))
}

func TestInitI18NBundleMissingDir(t *testing.T) {
	assert.Error(t, InitI18NBundle("/does/not/exist"))
}
