package proto

import (
	"google.golang.org/protobuf/types/known/structpb"

	structs "github.com/ERRORIK404/Keypad_Calculator/pkg/structs"
)

func DisplayToStruct(d structs.Display) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"preview": d.Preview,
		"current": d.Current,
	})
}

func DisplayFromStruct(s *structpb.Struct) structs.Display {
	fields := s.GetFields()
	return structs.Display{
		Preview: fields["preview"].GetStringValue(),
		Current: fields["current"].GetStringValue(),
	}
}

func HistoryToList(items []structs.HistoryItem) (*structpb.ListValue, error) {
	values := make([]interface{}, 0, len(items))
	for _, item := range items {
		values = append(values, map[string]interface{}{
			"calculation": item.Calculation,
			"result":      item.Result,
			"time":        item.Time,
		})
	}
	return structpb.NewList(values)
}

func HistoryFromList(l *structpb.ListValue) []structs.HistoryItem {
	items := make([]structs.HistoryItem, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		fields := v.GetStructValue().GetFields()
		items = append(items, structs.HistoryItem{
			Calculation: fields["calculation"].GetStringValue(),
			Result:      fields["result"].GetStringValue(),
			Time:        fields["time"].GetStringValue(),
		})
	}
	return items
}
