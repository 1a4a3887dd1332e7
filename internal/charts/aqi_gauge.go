package charts

import (
	"encoding/json"
	"fmt"

	"breathewatch/internal/aqi"
	"breathewatch/internal/models"
)

// gaugeMax is the top of the gauge scale; higher readings pin the needle
const gaugeMax = 500.0

// AQIGaugeSnippet builds an ECharts gauge for the aggregate index with
// the six severity color bands
func (g *Generator) AQIGaugeSnippet(data *models.AirQuality) (ChartSnippet, error) {
	if data == nil {
		return ChartSnippet{}, fmt.Errorf("data cannot be nil")
	}

	id := "chart-aqi-gauge"

	assessment := aqi.Classify(data.Index)
	value := 0.0
	statusText := "No data"
	if data.Index != nil {
		value = *data.Index
		if value > gaugeMax {
			value = gaugeMax
		}
		if value < 0 {
			value = 0
		}
		statusText = assessment.Label
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{
			"formatter": "{a} <br/>{b} : {c}",
		},
		"series": []interface{}{
			map[string]interface{}{
				"name":        "AQI",
				"type":        "gauge",
				"min":         0,
				"max":         gaugeMax,
				"splitNumber": 10,
				"radius":      "80%",
				"axisLine": map[string]interface{}{
					"lineStyle": map[string]interface{}{
						"width": 20,
						"color": [][]interface{}{
							{50 / gaugeMax, aqi.LevelGood.Color()},
							{100 / gaugeMax, aqi.LevelModerate.Color()},
							{150 / gaugeMax, aqi.LevelSensitive.Color()},
							{200 / gaugeMax, aqi.LevelUnhealthy.Color()},
							{300 / gaugeMax, aqi.LevelVeryUnhealthy.Color()},
							{1.0, aqi.LevelHazardous.Color()},
						},
					},
				},
				"pointer": map[string]interface{}{
					"itemStyle": map[string]interface{}{
						"color": "auto",
					},
				},
				"axisTick": map[string]interface{}{
					"distance": -20,
					"length":   8,
					"lineStyle": map[string]interface{}{
						"color": "#fff",
						"width": 2,
					},
				},
				"splitLine": map[string]interface{}{
					"distance": -20,
					"length":   20,
					"lineStyle": map[string]interface{}{
						"color": "#fff",
						"width": 3,
					},
				},
				"axisLabel": map[string]interface{}{
					"color":    "inherit",
					"fontSize": 12,
					"distance": 35,
				},
				"detail": map[string]interface{}{
					"valueAnimation": true,
					"formatter":      fmt.Sprintf("%.0f\n%s", value, statusText),
					"color":          "inherit",
					"fontSize":       14,
					"fontWeight":     "bold",
					"offsetCenter":   []interface{}{0, "60%"},
				},
				"data": []interface{}{
					map[string]interface{}{
						"value": value,
						"name":  "AQI",
					},
				},
			},
		},
	}

	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, err
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:280px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	completeHTML := fmt.Sprintf(`<div class="gauge-item">
	<h4>Air Quality Index</h4>
	%s
</div>
%s`, div, script)

	return ChartSnippet{ID: id, Title: "Air Quality Index Gauge", Div: div, Script: script, HTML: completeHTML}, nil
}
