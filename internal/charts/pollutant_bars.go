package charts

import (
	"encoding/json"
	"fmt"

	"breathewatch/internal/models"
)

// PollutantBarsSnippet builds an ECharts bar chart of the current
// pollutant readings. Unreported pollutants are left out entirely
// rather than drawn as zero.
func (g *Generator) PollutantBarsSnippet(data *models.AirQuality) (ChartSnippet, error) {
	if data == nil {
		return ChartSnippet{}, fmt.Errorf("data cannot be nil")
	}

	id := "chart-pollutant-bars"

	var labels []string
	var values []float64
	for _, p := range models.Pollutants {
		if v := data.Readings[p]; v != nil {
			labels = append(labels, string(p))
			values = append(values, *v)
		}
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{
			"trigger": "axis",
		},
		"xAxis": map[string]interface{}{
			"type": "category",
			"data": labels,
		},
		"yAxis": map[string]interface{}{
			"type": "value",
			"name": "Sub-index",
		},
		"series": []interface{}{
			map[string]interface{}{
				"name": "Reading",
				"type": "bar",
				"data": values,
				"itemStyle": map[string]interface{}{
					"color": "#5470c6",
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

	completeHTML := fmt.Sprintf(`<div class="chart-item">
	<h4>Pollutant Readings</h4>
	%s
</div>
%s`, div, script)

	return ChartSnippet{ID: id, Title: "Pollutant Readings", Div: div, Script: script, HTML: completeHTML}, nil
}
