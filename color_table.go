package beatlane

import (
	"encoding/json"
	"image/color"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorLane1
	ColorLane2
	ColorLaneStroke
	ColorLaneHeld

	ColorJudgementLine

	ColorNote
	ColorNoteStroke

	ColorSliderTint

	ColorGradePerfect
	ColorGradeGood
	ColorGradeMiss

	ColorHudText

	ColorTableSize
)

func (i ColorTableIndex) String() string {
	switch i {
	case ColorBg:
		return "Bg"
	case ColorLane1:
		return "Lane1"
	case ColorLane2:
		return "Lane2"
	case ColorLaneStroke:
		return "LaneStroke"
	case ColorLaneHeld:
		return "LaneHeld"
	case ColorJudgementLine:
		return "JudgementLine"
	case ColorNote:
		return "Note"
	case ColorNoteStroke:
		return "NoteStroke"
	case ColorSliderTint:
		return "SliderTint"
	case ColorGradePerfect:
		return "GradePerfect"
	case ColorGradeGood:
		return "GradeGood"
	case ColorGradeMiss:
		return "GradeMiss"
	case ColorHudText:
		return "HudText"
	default:
		return "Unknown"
	}
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable[ColorBg] = color.NRGBA{10, 10, 14, 255}

	ColorTable[ColorLane1] = color.NRGBA{24, 24, 32, 255}
	ColorTable[ColorLane2] = color.NRGBA{32, 32, 42, 255}
	ColorTable[ColorLaneStroke] = color.NRGBA{90, 90, 110, 255}
	ColorTable[ColorLaneHeld] = color.NRGBA{60, 60, 90, 255}

	ColorTable[ColorJudgementLine] = color.NRGBA{230, 230, 240, 255}

	ColorTable[ColorNote] = color.NRGBA{240, 240, 250, 255}
	ColorTable[ColorNoteStroke] = color.NRGBA{120, 120, 140, 255}

	ColorTable[ColorSliderTint] = color.NRGBA{255, 255, 255, 255}

	ColorTable[ColorGradePerfect] = color.NRGBA{120, 240, 160, 255}
	ColorTable[ColorGradeGood] = color.NRGBA{240, 220, 120, 255}
	ColorTable[ColorGradeMiss] = color.NRGBA{240, 110, 110, 255}

	ColorTable[ColorHudText] = color.NRGBA{230, 230, 240, 255}
}

func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]color.NRGBA)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = table[i]
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	var colorTable [ColorTableSize]color.NRGBA

	var tableMap map[string]color.NRGBA

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]int)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = int(i)
	}

	for k, v := range tableMap {
		if index, ok := stringToIndex[k]; ok {
			colorTable[index] = v
		}
	}

	return colorTable, nil
}
