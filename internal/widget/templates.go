package widget

// All five templates share the skeleton and behavior block; they differ in
// their CSS rulesets. Adding a template means adding an entry here whose
// tokens are all covered by the substitution engine.

const baseHTML = `<div class="bt-widget bt-{{POSITION_STYLE}}">
  <div class="bt-modal" hidden>
    <div class="bt-header">
      <span class="bt-greeting">{{GREETING_MESSAGE}}</span>
      <button type="button" class="bt-close" aria-label="Close">&#215;</button>
    </div>
    {{VIDEO_SECTION}}
    <div class="bt-body">{{CHANNELS_SECTION}}{{EMPTY_STATE}}</div>
  </div>
  <span class="bt-tooltip {{TOOLTIP_CLASS}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</span>
  <button type="button" class="bt-launcher" style="{{BUTTON_STYLE}}" aria-label="Open contact options">{{BUTTON_ICON}}</button>
</div>`

const baseJS = `var channels = {{CHANNELS_DATA}};
var tooltipDisplay = '{{TOOLTIP_DISPLAY}}';
var root = document.querySelector('.bt-widget');
if (root) {
  var launcher = root.querySelector('.bt-launcher');
  var modal = root.querySelector('.bt-modal');
  var tooltip = root.querySelector('.bt-tooltip');
  var closeBtn = root.querySelector('.bt-close');

  var urls = {};
  channels.forEach(function (c) {
    urls[c.id] = c.url;
    (c.items || []).forEach(function (i) { urls[i.id] = i.url; });
    (c.children || []).forEach(function (i) { urls[i.id] = i.url; });
  });

  var setOpen = function (open) {
    if (!modal) { return; }
    modal.hidden = !open;
    root.classList.toggle('bt-open', open);
    if (open) {
      Array.prototype.forEach.call(root.querySelectorAll('video'), function (v) {
        v.muted = false;
        if (v.play) { v.play().catch(function () {}); }
      });
    }
  };

  if (launcher) {
    launcher.addEventListener('click', function (e) {
      e.stopPropagation();
      setOpen(modal && modal.hidden);
    });
    if (tooltip && tooltipDisplay === 'hover') {
      launcher.addEventListener('mouseenter', function () {
        tooltip.classList.add('show');
        tooltip.classList.remove('hide');
      });
      launcher.addEventListener('mouseleave', function () {
        tooltip.classList.add('hide');
        tooltip.classList.remove('show');
      });
    }
  }
  if (closeBtn) {
    closeBtn.addEventListener('click', function () { setOpen(false); });
  }
  document.addEventListener('keydown', function (e) {
    if (e.key === 'Escape') { setOpen(false); }
  });
  document.addEventListener('click', function (e) {
    if (!root.contains(e.target)) { setOpen(false); }
  });

  root.addEventListener('click', function (e) {
    var toggle = e.target.closest ? e.target.closest('.bt-group-toggle') : null;
    if (toggle) {
      e.preventDefault();
      var items = toggle.parentNode.querySelector('.bt-group-items');
      if (items) { items.hidden = !items.hidden; }
      return;
    }
    var link = e.target.closest ? e.target.closest('[data-channel-id]') : null;
    if (link) {
      e.preventDefault();
      var url = urls[link.getAttribute('data-channel-id')];
      if (url) { window.open(url, '_blank', 'noopener'); }
    }
  });
}`

// layout rules every variant shares
const coreCSS = `.bt-widget{position:fixed;bottom:20px;{{POSITION_STYLE}}:20px;z-index:2147483000;font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;}
.bt-launcher{width:{{BUTTON_SIZE}}px;height:{{BUTTON_SIZE}}px;background:{{BUTTON_COLOR}};border:none;border-radius:50%;color:#fff;cursor:pointer;display:flex;align-items:center;justify-content:center;box-shadow:0 4px 14px rgba(0,0,0,.25);transition:transform .15s ease;}
.bt-launcher:hover{transform:scale(1.06);}
.bt-launcher .bt-icon{width:55%;height:55%;}
.bt-tooltip{position:absolute;white-space:nowrap;padding:6px 12px;border-radius:6px;background:#111827;color:#fff;font-size:13px;transition:opacity .15s ease;}
.bt-tooltip.show{opacity:1;}
.bt-tooltip.hide{opacity:0;pointer-events:none;}
.bt-modal{position:absolute;bottom:calc({{BUTTON_SIZE}}px + 14px);{{POSITION_STYLE}}:0;width:320px;max-height:70vh;overflow-y:auto;border-radius:14px;box-shadow:0 12px 36px rgba(0,0,0,.24);}
.bt-header{display:flex;align-items:center;justify-content:space-between;padding:14px 16px;}
.bt-greeting{font-weight:600;font-size:15px;}
.bt-close{border:none;background:none;font-size:20px;cursor:pointer;line-height:1;color:inherit;}
.bt-video{width:100%;overflow:hidden;}
.bt-video video{width:100%;display:block;object-fit:cover;}
.bt-body{padding:8px;}
.bt-channel{display:flex;align-items:center;gap:10px;padding:10px;border-radius:10px;text-decoration:none;color:inherit;cursor:pointer;}
.bt-channel-icon{flex:none;width:38px;height:38px;border-radius:50%;color:#fff;display:flex;align-items:center;justify-content:center;}
.bt-channel-icon .bt-icon,.bt-channel-icon .bt-icon-img{width:20px;height:20px;}
.bt-icon-img{object-fit:contain;border-radius:4px;}
.bt-channel-meta{flex:1;min-width:0;display:flex;flex-direction:column;}
.bt-channel-label{font-size:14px;font-weight:500;}
.bt-channel-value{font-size:12px;opacity:.65;overflow:hidden;text-overflow:ellipsis;white-space:nowrap;}
.bt-channel-ext{flex:none;opacity:.4;}
.bt-channel-ext .bt-icon{width:14px;height:14px;}
.bt-badge{flex:none;font-size:11px;padding:2px 8px;border-radius:10px;background:rgba(0,0,0,.08);}
.bt-group{position:relative;}
.bt-submenu{display:none;padding-left:20px;}
.bt-group:hover .bt-submenu,.bt-group:focus-within .bt-submenu{display:block;}
.bt-group-toggle{display:flex;align-items:center;gap:10px;width:100%;padding:10px;border:none;background:none;border-radius:10px;cursor:pointer;font:inherit;color:inherit;text-align:left;}
.bt-group-items{padding-left:20px;}
.bt-empty{padding:24px 16px;text-align:center;font-size:13px;opacity:.6;}
`

const defaultCSS = coreCSS + `.bt-modal{background:#fff;color:#111827;}
.bt-header{border-bottom:1px solid #e5e7eb;}
.bt-channel:hover,.bt-group-toggle:hover{background:#f3f4f6;}
`

const darkCSS = coreCSS + `.bt-modal{background:#1f2937;color:#f9fafb;}
.bt-header{border-bottom:1px solid #374151;}
.bt-channel:hover,.bt-group-toggle:hover{background:#374151;}
.bt-badge{background:rgba(255,255,255,.12);}
.bt-tooltip{background:#f9fafb;color:#111827;}
`

const minimalCSS = coreCSS + `.bt-launcher{box-shadow:none;border-radius:10px;}
.bt-modal{background:#fff;color:#111827;border:1px solid #e5e7eb;border-radius:8px;box-shadow:none;}
.bt-header{padding:10px 12px;}
.bt-channel,.bt-group-toggle{border-radius:4px;}
.bt-channel:hover,.bt-group-toggle:hover{background:#fafafa;}
.bt-channel-icon{border-radius:8px;}
`

const modernCSS = coreCSS + `.bt-launcher{background:linear-gradient(135deg,{{BUTTON_COLOR}},#7c3aed);}
.bt-modal{background:linear-gradient(180deg,#ffffff,#f5f3ff);color:#1e1b4b;border-radius:20px;}
.bt-header{border-bottom:1px solid rgba(124,58,237,.15);}
.bt-channel:hover,.bt-group-toggle:hover{background:rgba(124,58,237,.08);}
.bt-badge{background:rgba(124,58,237,.12);color:#6d28d9;}
`

const elegantCSS = coreCSS + `.bt-widget{font-family:Georgia,"Times New Roman",serif;}
.bt-modal{background:#fffdf7;color:#1c1917;border:1px solid #d6d3d1;border-radius:6px;}
.bt-header{border-bottom:1px double #d6d3d1;}
.bt-greeting{font-size:16px;letter-spacing:.02em;}
.bt-channel:hover,.bt-group-toggle:hover{background:#f5f5f4;}
.bt-channel-icon{border-radius:4px;}
`

var templateOrder = []string{"default", "dark", "minimal", "modern", "elegant"}

var registry = map[string]WidgetTemplate{
	"default": {
		ID:          "default",
		Name:        "Default",
		Description: "Clean light panel with rounded channel rows",
		HTML:        baseHTML,
		CSS:         defaultCSS,
		JS:          baseJS,
	},
	"dark": {
		ID:          "dark",
		Name:        "Dark",
		Description: "Dark panel for dark-themed sites",
		HTML:        baseHTML,
		CSS:         darkCSS,
		JS:          baseJS,
	},
	"minimal": {
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Flat borders, no shadows",
		HTML:        baseHTML,
		CSS:         minimalCSS,
		JS:          baseJS,
	},
	"modern": {
		ID:          "modern",
		Name:        "Modern",
		Description: "Gradient accents and large radii",
		HTML:        baseHTML,
		CSS:         modernCSS,
		JS:          baseJS,
	},
	"elegant": {
		ID:          "elegant",
		Name:        "Elegant",
		Description: "Serif type on a warm paper panel",
		HTML:        baseHTML,
		CSS:         elegantCSS,
		JS:          baseJS,
	},
}
