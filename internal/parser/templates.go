package parser

import (
	"strings"

	"github.com/jacoelho/uidef/internal/template"
	"github.com/jacoelho/uidef/internal/uixml"
)

var templateTags = map[string]bool{
	"textureinfo":    true,
	"frame":          true,
	"animation":      true,
	"frametemplate":  true,
	"buttontemplate": true,
	"gaugetemplate":  true,
	"windowtemplate": true,
}

func isTemplateTag(name string) bool {
	return templateTags[strings.ToLower(name)]
}

// parseTemplate reads one top-level template record into the document
// library. Records without an "item" key are dropped.
func (d *Document) parseTemplate(e *uixml.Element) {
	item := strings.TrimSpace(e.Attr("item"))
	if item == "" {
		return
	}

	switch strings.ToLower(e.Name) {
	case "textureinfo":
		d.Templates.Textures[item] = &template.TextureInfo{
			Item:   item,
			File:   e.Attr("file"),
			X:      intAttr(e, "x", 0),
			Y:      intAttr(e, "y", 0),
			Width:  intAttr(e, "width", 0),
			Height: intAttr(e, "height", 0),
		}
	case "frame":
		d.Templates.Frames[item] = &template.Frame{
			Item:    item,
			Texture: e.Attr("texture"),
			X:       intAttr(e, "x", 0),
			Y:       intAttr(e, "y", 0),
			Width:   intAttr(e, "width", 0),
			Height:  intAttr(e, "height", 0),
		}
	case "animation":
		anim := &template.Animation{
			Item:  item,
			Delay: intAttr(e, "delay", 0),
		}
		for _, child := range e.Children {
			if child.Is("frame") {
				if name := child.TrimmedText(); name != "" {
					anim.Frames = append(anim.Frames, name)
				}
			}
		}
		d.Templates.Animations[item] = anim
	case "frametemplate":
		d.Templates.FrameTemplates[item] = &template.FrameTemplate{
			Item:        item,
			TopLeft:     e.ChildText("topleft"),
			Top:         e.ChildText("top"),
			TopRight:    e.ChildText("topright"),
			Left:        e.ChildText("left"),
			Center:      e.ChildText("center"),
			Right:       e.ChildText("right"),
			BottomLeft:  e.ChildText("bottomleft"),
			Bottom:      e.ChildText("bottom"),
			BottomRight: e.ChildText("bottomright"),
		}
	case "buttontemplate":
		d.Templates.Buttons[item] = &template.ButtonTemplate{
			Item:     item,
			Normal:   e.ChildText("normal"),
			Hover:    e.ChildText("hover"),
			Pressed:  e.ChildText("pressed"),
			Disabled: e.ChildText("disabled"),
		}
	case "gaugetemplate":
		d.Templates.Gauges[item] = &template.GaugeTemplate{
			Item:       item,
			Background: e.ChildText("background"),
			Fill:       e.ChildText("fill"),
		}
	case "windowtemplate":
		d.Templates.Windows[item] = &template.WindowTemplate{
			Item:     item,
			Frame:    e.ChildText("frame"),
			TitleBar: e.ChildText("titlebar"),
			CloseBox: e.ChildText("closebox"),
		}
	}
}
