package glang

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

type LangType int

const (
	EN LangType = iota
	RU
)

//go:embed en.yaml ru.yaml
var dicts embed.FS

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

// create object LangWorker and set EN lang
func NewGUILangWorker() (*GUILangWorker, error) {
	lw := &GUILangWorker{dict: make(map[string]string)}
	if err := lw.SetLang(EN); err != nil {
		return nil, err
	}
	return lw, nil
}

func LangFromString(s string) LangType {
	if s == "ru" {
		return RU
	}
	return EN
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	data, err := dicts.ReadFile(l.fileName())
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode %s: %w", l.fileName(), err)
	}
	lw.lang, lw.dict = l, dict
	return nil
}

func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key // if key is not found
}

func (l LangType) fileName() string {
	switch l {
	case RU:
		return "ru.yaml"
	default:
		return "en.yaml"
	}
}
