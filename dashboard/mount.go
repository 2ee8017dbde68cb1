package dashboard

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"weather-dashboard/render"
)

// Идентификаторы элементов страницы
const (
	MountPointID  = "weather-display"
	NoticeID      = "weather-notice"
	UnitToggleID  = "unitToggle"
	LocationInput = "location"
)

// PageState всё, что нужно подставить в оболочку страницы
type PageState struct {
	Tree       render.DisplayTree
	Fahrenheit bool
	Location   string
	Notice     string
}

// Mount полностью заменяет содержимое точки монтирования разметкой дерева
// и выставляет состояние формы и переключателя.
func Mount(shell []byte, state PageState) ([]byte, error) {
	root, err := html.Parse(bytes.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора страницы: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	target := doc.Find("#" + MountPointID)
	if target.Length() == 0 {
		return nil, fmt.Errorf("точка монтирования #%s не найдена", MountPointID)
	}

	markup, err := state.Tree.HTML()
	if err != nil {
		return nil, err
	}
	target.SetHtml(markup)

	toggle := doc.Find("#" + UnitToggleID)
	if state.Fahrenheit {
		toggle.SetAttr("checked", "checked")
	} else {
		toggle.RemoveAttr("checked")
	}

	if state.Location != "" {
		doc.Find("#"+LocationInput).SetAttr("value", state.Location)
	}

	notice := doc.Find("#" + NoticeID)
	notice.SetText(state.Notice)
	if state.Notice == "" {
		notice.SetAttr("hidden", "hidden")
	} else {
		notice.RemoveAttr("hidden")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("ошибка сериализации страницы: %w", err)
	}
	return buf.Bytes(), nil
}
